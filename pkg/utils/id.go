package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um código curto aleatório, usado como código de recibo das vendas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
