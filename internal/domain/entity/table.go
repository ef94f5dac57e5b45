package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownTable = errors.New("unknown table")

// Table identifies one of the replicated tables.
type Table int

const (
	TableDepartments Table = iota + 1
	TablePhysicians
	TableConsultations
)

var tableNames = map[Table]string{
	TableDepartments:   "departments",
	TablePhysicians:    "physicians",
	TableConsultations: "consultations",
}

// Tables returns every replicated table in dependency order.
func Tables() []Table {
	return []Table{TableDepartments, TablePhysicians, TableConsultations}
}

// TableNames returns the wire names of every replicated table.
func TableNames() []string {
	names := make([]string, 0, len(tableNames))
	for _, t := range Tables() {
		names = append(names, t.String())
	}
	return names
}

// ParseTable is the only way a table name coming from outside becomes a Table.
func ParseTable(name string) (Table, error) {
	for _, t := range Tables() {
		if tableNames[t] == name {
			return t, nil
		}
	}
	return 0, ErrUnknownTable
}

func (t Table) String() string {
	if name, ok := tableNames[t]; ok {
		return name
	}
	return fmt.Sprintf("table(%d)", int(t))
}
