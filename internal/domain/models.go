package domain

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Color       string   `json:"color"`
	Material    string   `json:"material"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	CreatedAt   string   `json:"createdAt"`
}

// ProductSummary is the slice of product data embedded in cart lines and
// bookmark records. Price may be absent when the backend has only partially
// hydrated the row.
type ProductSummary struct {
	Name   string   `json:"name"`
	Price  int      `json:"price"`
	Images []string `json:"images"`
}

// CartItem is one cart line. ID is the server-assigned line id and is
// distinct from ProductID.
type CartItem struct {
	ID        int            `json:"id"`
	ProductID int            `json:"productId"`
	Quantity  int            `json:"quantity"`
	Product   ProductSummary `json:"product"`
}

// Bookmark is the server's wishlist record, one row per product id. The
// bookmark store derives its name-keyed view from these.
type Bookmark struct {
	ID        int            `json:"id"`
	ProductID int            `json:"productId"`
	Product   ProductSummary `json:"product"`
}

type OrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type Order struct {
	ID          int         `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	TotalAmount int         `json:"totalAmount"`
	Status      string      `json:"status"` // PENDING | PAID | SHIPPED | CANCELLED
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"createdAt"`
}

// OrderDraft bridges checkout submission and the order-success page.
type OrderDraft struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	TotalAmount int    `json:"totalAmount"`
}

// ShippingInfo is the checkout form as sent to the backend.
type ShippingInfo struct {
	Recipient string `json:"recipient"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Memo      string `json:"memo,omitempty"`
}

type Inquiry struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Answer    string `json:"answer"`
	Status    string `json:"status"` // OPEN | ANSWERED
	CreatedAt string `json:"createdAt"`
}

// Pagination is the normalized form of the backend's per-endpoint variants
// (total vs totalUsers, page vs currentPage).
type Pagination struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}
