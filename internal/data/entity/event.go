package entity

import "time"

type Event struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Date        time.Time `db:"event_date"`
	Location    *string   `db:"location"`
	Image       *string   `db:"image"`
}
