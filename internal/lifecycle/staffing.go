package lifecycle

import (
	"math"
	"sort"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

type RoleStaffing struct {
	RoleCode      string `json:"roleCode"`
	RequiredCount int32  `json:"requiredCount"`
	AssignedCount int32  `json:"assignedCount"`
}

type StaffingSummary struct {
	Roles             []RoleStaffing `json:"roles"`
	TotalRequired     int32          `json:"totalRequired"`
	TotalAssigned     int32          `json:"totalAssigned"`
	CompletionPercent int            `json:"completionPercent"`
}

// Staffing derives required-vs-assigned counts for a shift. Every
// non-removed assignment counts toward its role, UpForGrabs and NoShow
// included, since the slot record still occupies the position. Roles with
// a zero required count are left out of the breakdown but their
// assignments still count toward the total. Completion is capped at 100;
// overstaffing one role is not penalized.
func Staffing(requirements []domain.RoleRequirement, assignments []*domain.Assignment) StaffingSummary {
	assignedByRole := make(map[string]int32)
	for _, a := range assignments {
		assignedByRole[a.RoleCode]++
	}

	summary := StaffingSummary{Roles: make([]RoleStaffing, 0, len(requirements))}
	for _, req := range requirements {
		summary.TotalRequired += req.RequiredCount
		if req.RequiredCount == 0 {
			continue
		}
		summary.Roles = append(summary.Roles, RoleStaffing{
			RoleCode:      req.RoleCode,
			RequiredCount: req.RequiredCount,
			AssignedCount: assignedByRole[req.RoleCode],
		})
	}
	sort.Slice(summary.Roles, func(i, j int) bool {
		return summary.Roles[i].RoleCode < summary.Roles[j].RoleCode
	})

	summary.TotalAssigned = int32(len(assignments))

	if summary.TotalRequired == 0 {
		summary.CompletionPercent = 100
		return summary
	}

	percent := int(math.Round(100 * float64(summary.TotalAssigned) / float64(summary.TotalRequired)))
	if percent > 100 {
		percent = 100
	}
	summary.CompletionPercent = percent

	return summary
}
