package service

import (
	"github.com/offineeds/pim-admin/internal/models"
	"github.com/offineeds/pim-admin/pkg/baserow"
)

// toProduct converts one raw row into the named Product shape. The function
// is pure: same row in, same record out.
func (s *ProductService) toProduct(row baserow.Row) models.Product {
	get := func(name string) baserow.Value {
		return row.Field(s.fields.ColumnFor(name))
	}
	return models.Product{
		ID:                        row.ID,
		SKU:                       get("sku").Text(),
		Name:                      get("name").Text(),
		Image:                     get("image").FirstURL(),
		Description:               get("description").Text(),
		ShortDescription:          get("short_description").Text(),
		Price:                     get("price").Float(),
		TierPrice:                 get("tier_price").Text(),
		TierPriceGlobal:           get("tier_price_global").Text(),
		SamplePrice:               get("sample_price").Float(),
		VendorCode:                get("vendor_code").Text(),
		Brand:                     get("brand").JoinedLinks(),
		EnableProduct:             get("enable_product").Option(),
		Color:                     get("color").Option(),
		HiddenFromCategory:        yesNo(get("hidden_from_category").Bool()),
		Type:                      get("type").Option(),
		AttributeSet:              get("attribute_set").JoinedLinks(),
		TaxClass:                  get("tax_class").Option(),
		Visibility:                get("visibility").Option(),
		Websites:                  get("websites").JoinedLinks(),
		DeliveryTimeline:          get("delivery_timeline").Text(),
		OffineedsDeliveryTimeline: get("offineeds_delivery_timeline").Text(),
		UsualDeliveryTimes:        get("usual_delivery_times").Text(),
		Dimensions:                get("dimensions").Text(),
		Features:                  get("features").JoinedLinks(),
		ProductVisibility:         get("product_visibility").Option(),
		SpecialFeatures:           get("special_features").JoinedLinks(),
		ProductInBox:              get("product_in_box").Text(),
		Customization:             get("customization").Option(),
		Material:                  get("material").Option(),
		IsCustomizableProduct:     get("is_customizable_product").Option(),
		CustomizationType:         get("customization_type").Option(),
		KitHeight:                 get("kit_height").Text(),
		KitLength:                 get("kit_length").Text(),
		KitWidth:                  get("kit_width").Text(),
		Quantity:                  get("quantity").Float(),
		Categories:                get("categories").JoinedLinks(),
		SmallImage:                get("small_image").Text(),
		ThumbnailImage:            get("thumbnail_image").Text(),
		IsInStock:                 get("is_in_stock").Text(),
		CreatedAt:                 get("created_at").Text(),
		UpdatedAt:                 get("updated_at").Text(),
	}
}

// writeFields maps a draft back to opaque field identifiers for the write
// path. Linked fields are sent as label lists; the store resolves them
// against the target table's primary field.
func (s *ProductService) writeFields(draft models.ProductDraft) map[string]any {
	fields := make(map[string]any)
	put := func(name string, value any) {
		fields[s.fields.ColumnFor(name)] = value
	}
	putLink := func(name, value string) {
		if value == "" {
			return
		}
		put(name, []string{value})
	}

	put("sku", draft.SKU)
	put("name", draft.Name)
	put("description", draft.Description)
	put("price", draft.Price)
	put("quantity", draft.Quantity)
	putLink("categories", draft.Categories)
	if draft.VendorCode != "" {
		put("vendor_code", draft.VendorCode)
	}
	putLink("brand", draft.Brand)
	if draft.DeliveryTimeline != "" {
		put("delivery_timeline", draft.DeliveryTimeline)
	}
	if draft.TierPrice != "" {
		put("tier_price", draft.TierPrice)
	}
	if draft.SamplePrice != 0 {
		put("sample_price", draft.SamplePrice)
	}
	return fields
}

// yesNo renders a checkbox cell the way the catalog displays it.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
