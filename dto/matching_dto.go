package dto

// MatchingVolunteer is one volunteer qualifying for a project, with every
// skill that overlapped the project's requirements
type MatchingVolunteer struct {
	VolunteerID   string      `json:"volunteerId"`
	VolunteerName string      `json:"volunteerName"`
	MatchedSkills []SkillInfo `json:"matchedSkills"`
}
