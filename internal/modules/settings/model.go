package settings

// AdminProfile is the console operator's identity card. It is a singleton
// record, always replaced in full.
type AdminProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}

// RitualVideo is the featured brand film on the storefront.
type RitualVideo struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Poster      string `json:"poster,omitempty"`
}

// BrandSettings are the storefront's editable copy blocks.
type BrandSettings struct {
	Announcement string `json:"announcement"`
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
}

func DefaultAdminProfile() AdminProfile {
	return AdminProfile{
		Name:   "Maison Oracle",
		Email:  "admin@lumiere.com",
		Phone:  "+1 (888) LUMIÈRE",
		Role:   "Head Alchemist",
		Bio:    "Curating botanical luxury since the first bloom.",
		Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=200",
	}
}

func DefaultRitualVideo() RitualVideo {
	return RitualVideo{
		URL:         "https://www.youtube.com/embed/zO_8720qB14?autoplay=1&mute=1&loop=1",
		Title:       "The Synthesis Ritual",
		Description: "A visual journey through our Provencal harvest and the science behind every bottle.",
	}
}

func DefaultBrandSettings() BrandSettings {
	return BrandSettings{
		Announcement: "Complimentary Alpine Rose Mist with orders over $150",
		HeroTitle:    "Breathe Life Into Skin",
		HeroSubtitle: "The intersection of molecular precision and ancient botanical wisdom.",
	}
}
