package models

type Course struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Course         Course  `json:"course"`
	ProfilePicture *string `json:"profile_picture"`
}
