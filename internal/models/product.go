package models

// Product represents a product in the catalog. Field names follow the
// original `produto` table so existing databases keep working.
type Product struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Imagem    string  `json:"imagem" gorm:"type:varchar(255);not null"`
	Nome      string  `json:"nome" gorm:"type:varchar(100);not null"`
	Valor     float64 `json:"valor" gorm:"not null"`
	Descricao string  `json:"descricao" gorm:"type:text;not null"`
}

// TableName pins the table to `produto` instead of GORM's pluralized default.
func (Product) TableName() string {
	return "produto"
}

// ProductInput carries the fields required to create a product.
// Valor is a pointer so that a missing price can be told apart from zero.
type ProductInput struct {
	Imagem    string   `json:"imagem" validate:"required,max=255"`
	Nome      string   `json:"nome" validate:"required,max=100"`
	Valor     *float64 `json:"valor" validate:"required"`
	Descricao string   `json:"descricao" validate:"required"`
}

// ProductUpdate carries a partial update. A nil field was not supplied and
// leaves the stored value untouched.
type ProductUpdate struct {
	Imagem    *string  `json:"imagem" validate:"omitnil,min=1,max=255"`
	Nome      *string  `json:"nome" validate:"omitnil,min=1,max=100"`
	Valor     *float64 `json:"valor"`
	Descricao *string  `json:"descricao" validate:"omitnil,min=1"`
}

// Empty reports whether the update carries no fields at all.
func (u ProductUpdate) Empty() bool {
	return u.Imagem == nil && u.Nome == nil && u.Valor == nil && u.Descricao == nil
}

// ApplyTo overwrites the fields of p that are present in the update.
func (u ProductUpdate) ApplyTo(p *Product) {
	if u.Imagem != nil {
		p.Imagem = *u.Imagem
	}
	if u.Nome != nil {
		p.Nome = *u.Nome
	}
	if u.Valor != nil {
		p.Valor = *u.Valor
	}
	if u.Descricao != nil {
		p.Descricao = *u.Descricao
	}
}
