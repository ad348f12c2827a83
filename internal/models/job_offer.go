package models

// JobOffer is the job offer record as the backend serialises it. Pointer fields
// are optional on the wire.
type JobOffer struct {
	ID                    int     `json:"id"`
	Description           string  `json:"description"`
	JobExperience         *int    `json:"job_experience"`
	Role                  *string `json:"role"`
	CompanyName           string  `json:"company_name"`
	CompanyProfilePicture *string `json:"company_profile_picture"`
	IsActive              bool    `json:"is_active"`
	AppliedStudentsCount  int     `json:"applied_students_count"`
	PromotionalImageURL   *string `json:"promotional_image_url"`
	LikeCount             int     `json:"like_count"`
	LikedBy               []int   `json:"liked_by"`
	SubscribedBy          []int   `json:"subscribed_by"`
	CreatedAt             string  `json:"created_at"`
	Title                 *string `json:"title"`
}

// ToPost personalises the offer for user. Missing role, title and company picture
// become "", missing experience becomes 0.
func (o JobOffer) ToPost(user User) Post {
	return Post{
		ID:                    o.ID,
		CompanyName:           o.CompanyName,
		CompanyProfilePicture: stringOrEmpty(o.CompanyProfilePicture),
		Role:                  stringOrEmpty(o.Role),
		Title:                 stringOrEmpty(o.Title),
		Description:           o.Description,
		PromotionalImageURL:   o.PromotionalImageURL,
		LikeCount:             o.LikeCount,
		Liked:                 containsID(o.LikedBy, user.ID),
		AppliedStudentsCount:  o.AppliedStudentsCount,
		Subscribed:            containsID(o.SubscribedBy, user.ID),
		JobExperience:         intOrZero(o.JobExperience),
		Active:                o.IsActive,
		CreatedAt:             ToTimestamp(o.CreatedAt),
	}
}

// ToPosts maps every offer with ToPost, keeping order.
func ToPosts(offers []JobOffer, user User) []Post {
	posts := make([]Post, 0, len(offers))
	for _, offer := range offers {
		posts = append(posts, offer.ToPost(user))
	}
	return posts
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func containsID(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
