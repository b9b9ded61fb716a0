package entity

type Thread struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Content   string  `json:"content"`
	Tags      string  `json:"tags"`
	CreatedAt string  `json:"createdAt"`
	Replies   []Reply `json:"replies"`
}

type Reply struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Time    string `json:"time"`
}
