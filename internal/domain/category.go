// Package domain contém as estruturas de dados do domínio da aplicação
package domain

type Category struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Products []*Product `json:"products"`
}
