package entity

type Testimonial struct {
	Base
	Name     string `db:"name"`
	Location string `db:"location"`
	Package  string `db:"package"`
	Rating   int    `db:"rating"` // 1-5
	Text     string `db:"text"`
	Avatar   string `db:"avatar"`
}
