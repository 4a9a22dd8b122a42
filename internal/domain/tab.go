package domain

import "strings"

// Tab identifies one of the five dashboard tabs.
type Tab string

const (
	TabGastos      Tab = "gastos"
	TabIngresos    Tab = "ingresos"
	TabPrestamos   Tab = "prestamos"
	TabPresupuesto Tab = "presupuesto"
	TabTarjetas    Tab = "tarjetas"
)

// Tabs lists every dashboard tab in display order.
var Tabs = []Tab{TabGastos, TabIngresos, TabPrestamos, TabPresupuesto, TabTarjetas}

// ParseTab validates a tab name from a query parameter.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Tabs {
		if t == v {
			return t, nil
		}
	}
	return "", ErrInvalidTab
}

// ParseTabList parses a comma-separated tab list, skipping unknown names.
// Used for the ?reload=tab1,tab2 seed.
func ParseTabList(s string) []Tab {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tabs []Tab
	for _, part := range strings.Split(s, ",") {
		if t, err := ParseTab(part); err == nil {
			tabs = append(tabs, t)
		}
	}
	return tabs
}
