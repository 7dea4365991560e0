package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/cache"
	"github.com/volunhub/dto"
	"github.com/volunhub/repositories"
	"gorm.io/gorm"
)

var matcherLog = logrus.WithField("component", "matcher")

const matchingCacheTTL = 30 * time.Second

// MatcherService computes which volunteers qualify for a project through
// overlapping active skills. Pure read side; it never writes.
type MatcherService struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewMatcherService creates a new matcher service instance. The cache may
// be nil.
func NewMatcherService(db *gorm.DB, cacheClient *cache.Client) *MatcherService {
	return &MatcherService{db: db, cache: cacheClient}
}

func matchingCacheKey(projectID string) string {
	return "matching:project:" + projectID
}

// FindMatchingVolunteers returns one record per volunteer whose active
// skill links intersect the project's active skill requirements, with every
// matched skill listed. A project without active requirements yields an
// empty result.
func (s *MatcherService) FindMatchingVolunteers(ctx context.Context, projectID string) ([]dto.MatchingVolunteer, error) {
	projectRepo := repositories.NewProjectRepository(s.db)
	if _, err := projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			matcherLog.Warnf("project %s not found", projectID)
			return nil, apperrors.NotFound("project not found")
		}
		matcherLog.WithError(err).Error("error loading project")
		return nil, apperrors.Internal("error computing matching volunteers")
	}

	var cached []dto.MatchingVolunteer
	if hit, err := s.cache.Get(ctx, matchingCacheKey(projectID), &cached); err == nil && hit {
		return cached, nil
	}

	projectSkillRepo := repositories.NewProjectSkillRepository(s.db)
	skillIDs, err := projectSkillRepo.ActiveSkillIDs(projectID)
	if err != nil {
		matcherLog.WithError(err).Error("error loading project requirements")
		return nil, apperrors.Internal("error computing matching volunteers")
	}
	if len(skillIDs) == 0 {
		return []dto.MatchingVolunteer{}, nil
	}

	volunteerSkillRepo := repositories.NewVolunteerSkillRepository(s.db)
	links, err := volunteerSkillRepo.FindActiveBySkillIDs(skillIDs)
	if err != nil {
		matcherLog.WithError(err).Error("error loading volunteer links")
		return nil, apperrors.Internal("error computing matching volunteers")
	}

	// Group links by volunteer, keeping first-seen order so the result is
	// stable across calls.
	byVolunteer := make(map[string]int)
	matches := make([]dto.MatchingVolunteer, 0)
	for _, link := range links {
		idx, seen := byVolunteer[link.VolunteerID]
		if !seen {
			matches = append(matches, dto.MatchingVolunteer{
				VolunteerID:   link.VolunteerID,
				VolunteerName: link.Volunteer.User.Name,
				MatchedSkills: []dto.SkillInfo{},
			})
			idx = len(matches) - 1
			byVolunteer[link.VolunteerID] = idx
		}
		matches[idx].MatchedSkills = append(matches[idx].MatchedSkills, dto.SkillInfo{
			ID:   link.SkillID,
			Name: link.Skill.Name,
		})
	}

	if err := s.cache.Set(ctx, matchingCacheKey(projectID), matches, matchingCacheTTL); err != nil {
		matcherLog.WithError(err).Warn("failed to cache matching result")
	}

	return matches, nil
}
