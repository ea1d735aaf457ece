package transport

type CreateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// PatchProductRequest carries only the fields the caller sent; nil means
// "leave unchanged".
type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// Fields returns the update set keyed by stored field name.
func (r PatchProductRequest) Fields() map[string]any {
	out := make(map[string]any, 4)
	if r.Name != nil {
		out["name"] = *r.Name
	}
	if r.Price != nil {
		out["price"] = *r.Price
	}
	if r.Description != nil {
		out["description"] = *r.Description
	}
	if r.ImageURL != nil {
		out["image_url"] = *r.ImageURL
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
