package models

// CartLineRequest is one submitted line of a purchase or sale cart.
type CartLineRequest struct {
	ProductID string  `json:"idProduc"`
	Quantity  int64   `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`
}

// SaleRequest is the submit payload of the sale form: header fields plus
// the editable cart.
type SaleRequest struct {
	ClientID        string            `json:"idCliente"`
	Date            string            `json:"fechaVenta"`
	SaleType        string            `json:"tipoVenta"` // "Contado" or "Credito"
	InitialPayment  float64           `json:"montoPagadoInicial"`
	PaymentMethodID string            `json:"idMetodoPago"`
	Items           []CartLineRequest `json:"items"`
}

// PurchaseRequest is the submit payload of the purchase form.
type PurchaseRequest struct {
	VendorID string            `json:"idVende"`
	Date     string            `json:"fechaCompra"`
	Items    []CartLineRequest `json:"items"`
}

// PaymentRequest records one payment against a pending sale.
type PaymentRequest struct {
	SaleID          string  `json:"idVenta"`
	Date            string  `json:"fechaPago"`
	Amount          float64 `json:"montoPago"`
	PaymentMethodID string  `json:"idMetodoPago"`
}

// LoginRequest carries the plaintext credential pair.
type LoginRequest struct {
	Username string `json:"nombreUsu"`
	Password string `json:"contrasenaUsu"`
}

// RegisterRequest creates an in-memory user account.
type RegisterRequest struct {
	Username        string `json:"nombreUsu"`
	Password        string `json:"contrasenaUsu"`
	ConfirmPassword string `json:"confirmarContrasena"`
}
