package dto

// ─── Banners ─────────────────────────────────────────────────────────────────

type BannerRequest struct {
	Title           *string `json:"title"`
	Subtitle        *string `json:"subtitle"`
	ImageURLDesktop string  `json:"image_url_desktop" validate:"required"`
	ImageURLMobile  *string `json:"image_url_mobile"`
	LinkURL         *string `json:"link_url"`
	ProductID       *string `json:"product_id" validate:"omitempty,uuid"`
	SortOrder       int     `json:"sort_order"`
}

type BannerResponse struct {
	ID              string  `json:"id"`
	Title           *string `json:"title"`
	Subtitle        *string `json:"subtitle"`
	ImageURLDesktop string  `json:"image_url_desktop"`
	ImageURLMobile  *string `json:"image_url_mobile"`
	FinalLinkURL    string  `json:"final_link_url"`
	SortOrder       int     `json:"sort_order"`
}

// ─── Header links ────────────────────────────────────────────────────────────

type HeaderLinkRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
	SortOrder  int     `json:"sort_order"`
}

type HeaderLinkResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CategorySlug *string `json:"category_slug"`
	SortOrder    int     `json:"sort_order"`
}

// ─── Footer links ────────────────────────────────────────────────────────────

type FooterLinkRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=100"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
	Column    int    `json:"column" validate:"min=1"`
}

type FooterLinkResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	FinalURL  string `json:"final_url"`
	SortOrder int    `json:"sort_order"`
	Column    int    `json:"column"`
}

// ─── Text sections ───────────────────────────────────────────────────────────

type TextSectionRequest struct {
	Key     string  `json:"key"   validate:"required,min=1,max=50"`
	Title   string  `json:"title" validate:"required,min=1,max=150"`
	Content *string `json:"content"`
}

type TextSectionResponse struct {
	ID      string  `json:"id"`
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Content *string `json:"content"`
}
