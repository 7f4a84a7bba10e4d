package models

import "errors"

var (
	// ErrValidation indica que os dados do formulário não satisfazem o esquema
	ErrValidation = errors.New("invalid product data")
	// ErrRemoteUnavailable indica falha de rede ou do Firestore
	ErrRemoteUnavailable = errors.New("remote collection unavailable")
	// ErrStorageUnavailable indica falha no armazenamento local de chave-valor
	ErrStorageUnavailable = errors.New("local storage unavailable")
	// ErrParse indica documento remoto com campos ausentes ou inválidos
	ErrParse = errors.New("invalid remote document")
	// ErrProductNotFound é retornado quando o produto não existe
	ErrProductNotFound = errors.New("product not found")
)
