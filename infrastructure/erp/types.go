package erp

import "time"

// AgencyAddress is the structured agency address block.
type AgencyAddress struct {
	Building string `json:"building"`
	Place    string `json:"place"`
	Landmark string `json:"landmark"`
	Street   string `json:"street"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Contact is a typed agency phone number. An agency carries at most three.
type Contact struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// Agency mirrors the server resource; the console holds an editable copy
// until submit.
type Agency struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	Address   AgencyAddress `json:"address"`
	Contacts  []Contact     `json:"contacts"`
	GSTNumber string        `json:"gstNumber"`
}

// User is a staff user of the agency. Password is write-only.
type User struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Mobile      string   `json:"mobile"`
	Username    string   `json:"username"`
	Password    string   `json:"password,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	IsActive    bool     `json:"isActive"`
}

// Godown is a stock location. The default godown is derived, never stored:
// it is the earliest-created element of the fetched list.
type Godown struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contactNumber"`
	Notes         string    `json:"notes"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Category type enum.
const (
	CategoryCylinder = "CYLINDER"
	CategoryNFR      = "NFR"
	CategoryFTL      = "FTL"
	CategoryPR       = "PR"
)

// CategoryTypes is the fixed type enum in display order.
var CategoryTypes = []string{CategoryCylinder, CategoryNFR, CategoryFTL, CategoryPR}

// Category is a product category; delete is a soft deactivation server-side.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// Product is a lookup item carrying pricing defaults for voucher lines.
type Product struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	UnitPrice float64 `json:"unitPrice"`
	TaxRate   float64 `json:"taxRate"`
}

// Supplier is a plant/supplier lookup item.
type Supplier struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// StockAddInput is the single batch stock-addition request per product and
// godown.
type StockAddInput struct {
	ProductID   string `json:"productId"`
	GodownID    string `json:"godownId"`
	Filled      int    `json:"filled"`
	Empty       int    `json:"empty"`
	Defective   int    `json:"defective"`
	Sound       int    `json:"sound"`
	DefectivePR int    `json:"defectivePR"`
	Notes       string `json:"notes"`
}

// VoucherItem is one plant receipt line with its client-computed amount.
type VoucherItem struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	TaxRate   float64 `json:"taxRate"`
	Amount    float64 `json:"amount"`
}

// PlantReceiptInput carries the voucher with its derived totals. Rounding is
// submitted alongside so the server stores the exact reconciliation delta.
type PlantReceiptInput struct {
	VoucherNo  string        `json:"voucherNo"`
	Date       string        `json:"date"`
	SupplierID string        `json:"supplierId"`
	Items      []VoucherItem `json:"items"`
	SubTotal   float64       `json:"subTotal"`
	TaxTotal   float64       `json:"taxTotal"`
	Rounding   float64       `json:"rounding"`
	GrandTotal float64       `json:"grandTotal"`
}

// LoginResult is the optional operator identity the login endpoint may
// attach beside its success flag.
type LoginResult struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// RegisterInput creates an agency together with its admin user.
type RegisterInput struct {
	AgencyName string        `json:"agencyName"`
	Address    AgencyAddress `json:"address"`
	GSTNumber  string        `json:"gstNumber"`
	AdminName  string        `json:"adminName"`
	Email      string        `json:"email"`
	Mobile     string        `json:"mobile"`
	Username   string        `json:"username"`
	Password   string        `json:"password"`
}
