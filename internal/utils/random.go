package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

var firstNames = []string{
	"James", "Maria", "David", "Sarah", "Miguel", "Ashley", "Chris", "Dana",
	"Tyler", "Jasmine", "Luis", "Monica", "Derek", "Alicia", "Marcus", "Erin",
	"Tony", "Brianna", "Kevin", "Paula",
}

var lastNames = []string{
	"Smith", "Garcia", "Johnson", "Nguyen", "Brown", "Martinez", "Lee",
	"Walker", "Hernandez", "Clark", "Robinson", "Torres", "Hall", "Rivera",
	"Young", "Flores", "King", "Ortiz", "Scott", "Reyes",
}

func GenerateRandomWorker() *domain.User {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]

	return &domain.User{
		FullName: first + " " + last,
		Email:    fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), rand.Intn(1000)),
		Phone:    fmt.Sprintf("619-555-%04d", rand.Intn(10000)),
		IsActive: true,
	}
}

var venues = []string{
	"Convention Center Hall A", "Bayfront Amphitheater", "Harbor Pavilion",
	"Fairgrounds Arena", "Grand Ballroom", "Pier 12 Stage",
}

var eventNames = []string{
	"Trade Show Load-In", "Concert Load-Out", "Expo Setup", "Gala Strike",
	"Festival Build", "Corporate AV Install",
}

// GenerateRandomShift produces a shift starting within the next two
// weeks, staffed with a Crew Chief and a random spread of other roles.
func GenerateRandomShift() *domain.Shift {
	start := time.Now().Add(time.Duration(rand.Intn(14*24)) * time.Hour).Truncate(time.Hour)
	end := start.Add(time.Duration(4+rand.Intn(8)) * time.Hour)

	requirements := []domain.RoleRequirement{
		{RoleCode: domain.RoleCodeCrewChief, RequiredCount: 1},
		{RoleCode: domain.RoleCodeStagehand, RequiredCount: int32(2 + rand.Intn(8))},
	}
	extras := []string{
		domain.RoleCodeForkOperator,
		domain.RoleCodeReachFork,
		domain.RoleCodeRigger,
		domain.RoleCodeGeneralLabor,
	}
	for _, code := range extras {
		if rand.Intn(2) == 0 {
			requirements = append(requirements, domain.RoleRequirement{
				RoleCode:      code,
				RequiredCount: int32(rand.Intn(4)),
			})
		}
	}

	return &domain.Shift{
		Name:         eventNames[rand.Intn(len(eventNames))],
		Location:     venues[rand.Intn(len(venues))],
		StartTime:    start,
		EndTime:      end,
		Requirements: requirements,
	}
}
