package domain

import "time"

type RoleRequirement struct {
	RoleCode      string `json:"roleCode"`
	RequiredCount int32  `json:"requiredCount"`
}

type Shift struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Location     string            `json:"location"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Requirements []RoleRequirement `json:"requirements"`
	Timesheet    *Timesheet        `json:"timesheet,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	Version      int32             `json:"-"`
}

// NormalizeRequirements returns the requirement set the shift will actually
// store. Every shift keeps at least one Crew Chief: a missing CC entry is
// injected and a submitted CC count below 1 is raised to 1. All other
// counts are floored at 0.
func NormalizeRequirements(reqs []RoleRequirement) []RoleRequirement {
	normalized := make([]RoleRequirement, 0, len(reqs)+1)

	hasCC := false
	for _, req := range reqs {
		if req.RequiredCount < 0 {
			req.RequiredCount = 0
		}
		if req.RoleCode == RoleCodeCrewChief {
			hasCC = true
			if req.RequiredCount < 1 {
				req.RequiredCount = 1
			}
		}
		normalized = append(normalized, req)
	}

	if !hasCC {
		normalized = append(normalized, RoleRequirement{RoleCode: RoleCodeCrewChief, RequiredCount: 1})
	}

	return normalized
}
