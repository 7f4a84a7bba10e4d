package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shop-list-api/models"
)

func TestProductDocumentToProduct(t *testing.T) {
	valid := ProductDocument{
		Name:     "Leite",
		Quantity: 2,
		Unity:    "L",
		Category: "beverage",
		Checked:  true,
		UserID:   "user-1",
	}

	p, err := valid.ToProduct("doc-1")
	assert.NoError(t, err)
	assert.Equal(t, models.Product{
		ID:       "doc-1",
		Name:     "Leite",
		Quantity: 2,
		Unity:    models.UnityLiter,
		Category: models.CategoryBeverage,
		Checked:  true,
	}, p)
}

func TestProductDocumentToProductRejectsBadFields(t *testing.T) {
	valid := ProductDocument{Name: "Leite", Quantity: 2, Unity: "L", Category: "beverage"}

	testCases := []struct {
		name   string
		mutate func(d *ProductDocument)
	}{
		{name: "unidade desconhecida", mutate: func(d *ProductDocument) { d.Unity = "ml" }},
		{name: "categoria desconhecida", mutate: func(d *ProductDocument) { d.Category = "pets" }},
		{name: "nome vazio", mutate: func(d *ProductDocument) { d.Name = "" }},
		{name: "quantidade zero", mutate: func(d *ProductDocument) { d.Quantity = 0 }},
		{name: "quantidade negativa", mutate: func(d *ProductDocument) { d.Quantity = -3 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)

			_, err := d.ToProduct("doc-1")
			assert.ErrorIs(t, err, models.ErrParse)
		})
	}
}
