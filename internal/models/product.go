package models

// Product is the application-facing representation of one catalog record. It
// is a flat, named mapping over the store's opaque-identifier row shape; the
// translation lives in the service layer.
type Product struct {
	ID                        int64   `json:"id,omitempty"`
	SKU                       string  `json:"sku"`
	Name                      string  `json:"name"`
	Image                     string  `json:"image,omitempty"`
	Description               string  `json:"description"`
	ShortDescription          string  `json:"short_description,omitempty"`
	Price                     float64 `json:"price"`
	TierPrice                 string  `json:"tier_price,omitempty"`
	TierPriceGlobal           string  `json:"tier_price_global,omitempty"`
	SamplePrice               float64 `json:"sample_price,omitempty"`
	VendorCode                string  `json:"vendor_code,omitempty"`
	Brand                     string  `json:"brand,omitempty"`
	EnableProduct             string  `json:"enable_product,omitempty"`
	Color                     string  `json:"color,omitempty"`
	HiddenFromCategory        string  `json:"hidden_from_category,omitempty"`
	Type                      string  `json:"type,omitempty"`
	AttributeSet              string  `json:"attribute_set,omitempty"`
	TaxClass                  string  `json:"tax_class,omitempty"`
	Visibility                string  `json:"visibility,omitempty"`
	Websites                  string  `json:"websites,omitempty"`
	DeliveryTimeline          string  `json:"delivery_timeline,omitempty"`
	OffineedsDeliveryTimeline string  `json:"offineeds_delivery_timeline,omitempty"`
	UsualDeliveryTimes        string  `json:"usual_delivery_times,omitempty"`
	Dimensions                string  `json:"dimensions,omitempty"`
	Features                  string  `json:"features,omitempty"`
	ProductVisibility         string  `json:"product_visibility,omitempty"`
	SpecialFeatures           string  `json:"special_features,omitempty"`
	ProductInBox              string  `json:"product_in_box,omitempty"`
	Customization             string  `json:"customization,omitempty"`
	Material                  string  `json:"material,omitempty"`
	IsCustomizableProduct     string  `json:"is_customizable_product,omitempty"`
	CustomizationType         string  `json:"customization_type,omitempty"`
	KitHeight                 string  `json:"kit_height,omitempty"`
	KitLength                 string  `json:"kit_length,omitempty"`
	KitWidth                  string  `json:"kit_width,omitempty"`
	Quantity                  float64 `json:"quantity"`
	Categories                string  `json:"categories"`
	SmallImage                string  `json:"small_image,omitempty"`
	ThumbnailImage            string  `json:"thumbnail_image,omitempty"`
	IsInStock                 string  `json:"is_in_stock,omitempty"`
	CreatedAt                 string  `json:"created_at,omitempty"`
	UpdatedAt                 string  `json:"updated_at,omitempty"`
}

// ProductDraft is the subset of attributes the creation form persists. The
// identifier is assigned by the store on insert.
type ProductDraft struct {
	SKU              string  `json:"sku"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	Quantity         float64 `json:"quantity"`
	Categories       string  `json:"categories"`
	VendorCode       string  `json:"vendor_code,omitempty"`
	Brand            string  `json:"brand,omitempty"`
	DeliveryTimeline string  `json:"delivery_timeline,omitempty"`
	TierPrice        string  `json:"tier_price,omitempty"`
	SamplePrice      float64 `json:"sample_price,omitempty"`
}

// ProductPage is one page of catalog results plus the total match count.
type ProductPage struct {
	Products   []Product `json:"products"`
	TotalCount int       `json:"totalCount"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
}
