package store

// Persisted keys. Names are kept verbatim from the storefront's original
// local-storage schema, Indonesian ones included.
const (
	KeyUsers         = "users"
	KeyCurrentUser   = "currentUser"
	KeyProducts      = "products"
	KeyCart          = "keranjang"
	KeyCheckoutItems = "checkout_items"
	KeyCheckoutData  = "checkoutData"
	KeyRentalHistory = "riwayatSewa"
	KeyOrderHistory  = "orderHistory"
	KeyRentedHistory = "rentedHistory"
	KeyNotifications = "notifications"
	KeyReviews       = "ulasanProduk"
	KeyResetToken    = "resetToken"
)
