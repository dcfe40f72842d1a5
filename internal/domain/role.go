package domain

import "time"

// Built-in role codes. Operators may register additional custom codes
// through the role registry; these six always exist.
const (
	RoleCodeCrewChief    = "CC"
	RoleCodeStagehand    = "SH"
	RoleCodeForkOperator = "FO"
	RoleCodeReachFork    = "RFO"
	RoleCodeRigger       = "RG"
	RoleCodeGeneralLabor = "GL"
)

type Role struct {
	Code        string    `json:"code"`
	DisplayName string    `json:"displayName"`
	IsBuiltin   bool      `json:"isBuiltin"`
	CreatedAt   time.Time `json:"createdAt"`
}

func BuiltinRoles() []Role {
	return []Role{
		{Code: RoleCodeCrewChief, DisplayName: "Crew Chief", IsBuiltin: true},
		{Code: RoleCodeStagehand, DisplayName: "Stagehand", IsBuiltin: true},
		{Code: RoleCodeForkOperator, DisplayName: "Fork Operator", IsBuiltin: true},
		{Code: RoleCodeReachFork, DisplayName: "Reach Fork Operator", IsBuiltin: true},
		{Code: RoleCodeRigger, DisplayName: "Rigger", IsBuiltin: true},
		{Code: RoleCodeGeneralLabor, DisplayName: "General Labor", IsBuiltin: true},
	}
}
