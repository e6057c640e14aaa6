package domain

import "time"

type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BlogPost struct {
	ID          int32      `json:"id"`
	CategoryID  int32      `json:"category_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	Published   bool       `json:"published"`
	PublishedOn *time.Time `json:"published_on,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
}

type Testimonial struct {
	ID        int32     `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Quote     string    `json:"quote"`
	Rating    int32     `json:"rating"`
	Published bool      `json:"published"`
	CreatedOn time.Time `json:"created_on"`
}
