package profile

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/profile"
)

type ProfileUseCase struct {
	contentRepo portfolio.Repository
}

func NewProfileUseCase(repo portfolio.Repository) *ProfileUseCase {
	return &ProfileUseCase{
		contentRepo: repo,
	}
}

type GetProfileOutput struct {
	Profile profile.Profile
	Mailto  string
	Resume  string
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	c, err := uc.contentRepo.Content(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	mailto, err := c.Profile.MailtoURL()
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: c.Profile, Mailto: mailto, Resume: c.ResumePath}, nil
}

type ListSkillsOutput struct {
	Skills    []portfolio.SkillCategory
	TechIcons []portfolio.TechIcon
}

func (uc *ProfileUseCase) ExecuteListSkills(ctx context.Context) (*ListSkillsOutput, error) {
	c, err := uc.contentRepo.Content(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return &ListSkillsOutput{Skills: c.Skills, TechIcons: c.TechIcons}, nil
}
