package dto

// CreateSkillRequest represents the request payload for creating a skill
type CreateSkillRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSkillRequest represents the request payload for renaming a skill
type UpdateSkillRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents the request payload for updating a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
