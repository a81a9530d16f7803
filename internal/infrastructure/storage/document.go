package storage

import (
	"encoding/json"
	"slices"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// Document es la base de datos completa: un único blob JSON con todas las
// tablas. Cada mutación re-persiste el documento entero; no hay escrituras
// parciales por campo.
type Document struct {
	Products   []entity.Product  `json:"products"`
	Categories []entity.Category `json:"categories"`
	Movements  []entity.Movement `json:"movements"`
	Users      []entity.User     `json:"users"`
	Reports    []entity.Report   `json:"reports"`
	Activities []entity.Activity `json:"activities"`
}

// persistedProduct tolera los alias históricos del campo de cantidad
// ("stock", "qty") presentes en documentos antiguos. Los alias se normalizan
// al campo canónico una sola vez, al decodificar; al guardar solo se escribe
// "quantity".
type persistedProduct struct {
	entity.Product
	QuantityAlias *int `json:"quantity"`
	StockAlias    *int `json:"stock"`
	QtyAlias      *int `json:"qty"`
}

type persistedDocument struct {
	Products   []persistedProduct `json:"products"`
	Categories []entity.Category  `json:"categories"`
	Movements  []entity.Movement  `json:"movements"`
	Users      []entity.User      `json:"users"`
	Reports    []entity.Report    `json:"reports"`
	Activities []entity.Activity  `json:"activities"`
}

// decodeDocument parsea un documento persistido (o seed), aplicando la
// migración de alias de cantidad y rellenando tablas ausentes con secuencias
// vacías.
func decodeDocument(data []byte) (*Document, error) {
	var p persistedDocument
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	doc := &Document{
		Categories: p.Categories,
		Movements:  p.Movements,
		Users:      p.Users,
		Reports:    p.Reports,
		Activities: p.Activities,
	}
	for _, pp := range p.Products {
		prod := pp.Product
		switch {
		case pp.QuantityAlias != nil:
			prod.Quantity = *pp.QuantityAlias
		case pp.StockAlias != nil:
			prod.Quantity = *pp.StockAlias
		case pp.QtyAlias != nil:
			prod.Quantity = *pp.QtyAlias
		}
		doc.Products = append(doc.Products, prod)
	}
	doc.normalize()
	return doc, nil
}

// normalize garantiza que ninguna tabla sea nil, para que una clave ausente
// en el documento equivalga a una secuencia vacía.
func (d *Document) normalize() {
	if d.Products == nil {
		d.Products = []entity.Product{}
	}
	if d.Categories == nil {
		d.Categories = []entity.Category{}
	}
	if d.Movements == nil {
		d.Movements = []entity.Movement{}
	}
	if d.Users == nil {
		d.Users = []entity.User{}
	}
	if d.Reports == nil {
		d.Reports = []entity.Report{}
	}
	if d.Activities == nil {
		d.Activities = []entity.Activity{}
	}
}

// clone copia las tablas para que una mutación fallida no deje rastro en el
// documento vivo (commit total o nada).
func (d *Document) clone() *Document {
	return &Document{
		Products:   slices.Clone(d.Products),
		Categories: slices.Clone(d.Categories),
		Movements:  slices.Clone(d.Movements),
		Users:      slices.Clone(d.Users),
		Reports:    slices.Clone(d.Reports),
		Activities: slices.Clone(d.Activities),
	}
}
