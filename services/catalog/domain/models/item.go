package models

// Item is the validated catalog entry. The validate tags carry the
// structural constraints; construction goes through services.BuildItem,
// which additionally applies the semantic name rule and normalization.
// An Item that exists is valid — there is no partially-constructed state.
type Item struct {
	Name        string   `json:"name" validate:"required,min=3,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=300"`
	Price       float64  `json:"price" validate:"gt=0,lte=100000"`
	Tax         *float64 `json:"tax" validate:"omitempty,gt=0"`
	Code        *string  `json:"code" validate:"omitempty,item_code"`
	Tags        []string `json:"tags" validate:"omitempty,max=5"`
}

// Record is an Item plus its store-assigned identifier. The embedded Item
// keeps the JSON representation flat: {"item_id": 1, "name": ..., ...}.
type Record struct {
	ID int `json:"item_id"`
	Item
}
