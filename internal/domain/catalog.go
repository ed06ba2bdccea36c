package domain

// Category is immutable reference data identified by its slug
type Category struct {
	Slug        string `json:"slug" db:"slug" yaml:"slug"`
	Description string `json:"description" db:"description" yaml:"description"`
}

// User is referenced by Review.Owner and Comment.Author
type User struct {
	Username  string `json:"username" db:"username" yaml:"username"`
	Name      string `json:"name" db:"name" yaml:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url" yaml:"avatar_url"`
}
