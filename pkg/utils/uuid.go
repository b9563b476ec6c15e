package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const skuPrefix = "SKU-"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateSKU gera um SKU no formato SKU-XXXXXX
func GenerateSKU() (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return skuPrefix + id, nil
}
