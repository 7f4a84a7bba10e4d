package models

import "fmt"

// Unity representa a unidade de medida de um produto
type Unity string

const (
	UnityUnit     Unity = "Un."
	UnityKilogram Unity = "Kg"
	UnityLiter    Unity = "L"
)

// Category representa a categoria de um produto
type Category string

const (
	CategoryBakery     Category = "bakery"
	CategoryHortifruti Category = "hortifruti"
	CategoryProtein    Category = "protein"
	CategoryBeverage   Category = "beverage"
	CategoryGrocery    Category = "grocery"
)

// ParseUnity valida e converte uma string para Unity
func ParseUnity(s string) (Unity, error) {
	switch Unity(s) {
	case UnityUnit, UnityKilogram, UnityLiter:
		return Unity(s), nil
	}
	return "", fmt.Errorf("%w: unidade desconhecida %q", ErrValidation, s)
}

// ParseCategory valida e converte uma string para Category
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryBakery, CategoryHortifruti, CategoryProtein, CategoryBeverage, CategoryGrocery:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: categoria desconhecida %q", ErrValidation, s)
}

// Product representa um item da lista de compras
type Product struct {
	ID       string   `json:"id" firestore:"-"`
	Name     string   `json:"name" firestore:"name"`
	Quantity int      `json:"quantity" firestore:"quantity"`
	Unity    Unity    `json:"unity" firestore:"unity"`
	Category Category `json:"category" firestore:"category"`
	Checked  bool     `json:"checked" firestore:"checked"`
}

// ProductInput são os campos do formulário de criação de produto
type ProductInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unity    string `json:"unity"`
	Category string `json:"category"`
}

// Validate confere os campos do formulário contra o esquema
func (in ProductInput) Validate() error {
	if len(in.Name) < 2 || len(in.Name) > 30 {
		return fmt.Errorf("%w: nome precisa ter entre 2 e 30 caracteres", ErrValidation)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantidade precisa ser positiva", ErrValidation)
	}
	if _, err := ParseUnity(in.Unity); err != nil {
		return err
	}
	if _, err := ParseCategory(in.Category); err != nil {
		return err
	}
	return nil
}

// NewProduct constrói um Product a partir do formulário validado,
// sempre desmarcado e ainda sem ID (o ID vem do Firestore)
func NewProduct(in ProductInput) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}
	return Product{
		Name:     in.Name,
		Quantity: in.Quantity,
		Unity:    Unity(in.Unity),
		Category: Category(in.Category),
		Checked:  false,
	}, nil
}
