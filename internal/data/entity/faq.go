package entity

type FAQ struct {
	Base
	Question string `db:"question"`
	Answer   string `db:"answer"`
}
