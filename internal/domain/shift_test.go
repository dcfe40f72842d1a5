package domain

import "testing"

func findRequirement(t *testing.T, reqs []RoleRequirement, code string) RoleRequirement {
	t.Helper()
	for _, req := range reqs {
		if req.RoleCode == code {
			return req
		}
	}
	t.Fatalf("requirement %q not found in %v", code, reqs)
	return RoleRequirement{}
}

func TestNormalizeRequirementsInjectsMissingCrewChief(t *testing.T) {
	reqs := NormalizeRequirements([]RoleRequirement{
		{RoleCode: RoleCodeStagehand, RequiredCount: 4},
	})

	cc := findRequirement(t, reqs, RoleCodeCrewChief)
	if cc.RequiredCount != 1 {
		t.Fatalf("expected injected CC count of 1, got %d", cc.RequiredCount)
	}
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
}

func TestNormalizeRequirementsRaisesCrewChiefToOne(t *testing.T) {
	for _, submitted := range []int32{0, -3} {
		reqs := NormalizeRequirements([]RoleRequirement{
			{RoleCode: RoleCodeCrewChief, RequiredCount: submitted},
		})

		cc := findRequirement(t, reqs, RoleCodeCrewChief)
		if cc.RequiredCount != 1 {
			t.Fatalf("submitted CC count %d: expected 1, got %d", submitted, cc.RequiredCount)
		}
	}
}

func TestNormalizeRequirementsKeepsHigherCrewChiefCount(t *testing.T) {
	reqs := NormalizeRequirements([]RoleRequirement{
		{RoleCode: RoleCodeCrewChief, RequiredCount: 2},
	})

	if cc := findRequirement(t, reqs, RoleCodeCrewChief); cc.RequiredCount != 2 {
		t.Fatalf("expected CC count of 2 to survive, got %d", cc.RequiredCount)
	}
}

func TestNormalizeRequirementsFloorsNegativeCounts(t *testing.T) {
	reqs := NormalizeRequirements([]RoleRequirement{
		{RoleCode: RoleCodeRigger, RequiredCount: -5},
	})

	if rg := findRequirement(t, reqs, RoleCodeRigger); rg.RequiredCount != 0 {
		t.Fatalf("expected negative count floored to 0, got %d", rg.RequiredCount)
	}
}

func TestNormalizeRequirementsEmptyInput(t *testing.T) {
	reqs := NormalizeRequirements(nil)

	if len(reqs) != 1 {
		t.Fatalf("expected only the injected CC requirement, got %v", reqs)
	}
	if reqs[0].RoleCode != RoleCodeCrewChief || reqs[0].RequiredCount != 1 {
		t.Fatalf("unexpected requirement %v", reqs[0])
	}
}
