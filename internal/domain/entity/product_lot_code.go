package entity

// ProductLotCode identifica una línea de stock (producto + lote) dentro de una instalación.
// LotCode vacío significa que el producto no maneja lotes. Es comparable y se usa
// directamente como llave de mapa.
type ProductLotCode struct {
	ProductCode string
	LotCode     string
}

// NewProductLotCode construye el código; lotCode puede ser vacío.
func NewProductLotCode(productCode, lotCode string) ProductLotCode {
	return ProductLotCode{ProductCode: productCode, LotCode: lotCode}
}

// HasLot indica si el código corresponde a un producto con lote.
func (c ProductLotCode) HasLot() bool {
	return c.LotCode != ""
}

func (c ProductLotCode) String() string {
	if !c.HasLot() {
		return c.ProductCode
	}
	return c.ProductCode + "/" + c.LotCode
}
