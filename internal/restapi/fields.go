package restapi

// Field names of the flat-file records, as they appear in the CSV headers.
const (
	fieldSaleID         = "idVenta"
	fieldSaleDate       = "Fecha_Venta"
	fieldSaleType       = "tipoVenta"
	fieldInitialPayment = "montoPagadoInicial"
	fieldPaymentState   = "estadoPago"
	fieldClientID       = "idCliente"
	fieldClientRUC      = "rucCliente"
	fieldClientRef      = "refCliente"
	fieldDistrictName   = "nomDistr"
	fieldSaleClient     = "nombreCliente"
	fieldSaleMethod     = "nombreMetodo"

	fieldPurchaseID     = "idCompra"
	fieldPurchaseDate   = "Fecha_Compra"
	fieldVendorID       = "idVende"
	fieldPurchaseVendor = "nombreProveedor"

	fieldProductID    = "idProduc"
	fieldProductName  = "nomProduc"
	fieldLineQuantity = "CantidadProduc"
	fieldLinePrice    = "precioProduc"
	fieldLineSubtotal = "Subtotal"

	fieldTotal = "Total"

	fieldPaymentDate   = "fechaPago"
	fieldPaymentAmount = "montoPago"
	fieldMethodID      = "idMetodoPago"

	fieldOwnerName     = "nomDueno"
	fieldOwnerBusiness = "descNegocio"
	fieldOwnerPhone    = "telDueno"
	fieldOwnerAddress  = "dirDueno"
)

const (
	saleTypeCash    = "Contado"
	statePaid       = "Pagado"
	statePending    = "Pendiente"
	productFallback = "Producto"
)
