package dto

// PaginationRequest bounds a list page. Zero values fall back to the
// directory defaults of limit 10, offset 0.
type PaginationRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

func (r *PaginationRequest) SetDefault() {
	if r.Limit == 0 {
		r.Limit = 10
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

// UpdateUserRequest is a partial patch: empty fields are left untouched.
// OriginCountry carries a country name, resolved to a reference server-side.
type UpdateUserRequest struct {
	Name          string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Password      string `json:"password,omitempty" validate:"omitempty,min=6,max=100"`
	OriginCountry string `json:"origin_country,omitempty" validate:"omitempty,max=100"`
}
