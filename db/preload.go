package db

func InitPreload() {
	fillVenues()
}
