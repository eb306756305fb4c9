package seam

import "github.com/hakimdiab/seamnote/internal/model"

// DepthBand returns the min and max probing exchanges per category for a
// role level. Senior roles get probed deeper. Unknown roles fall back to
// the shallowest band.
func DepthBand(roleLevel string) (min int, max int) {
	switch roleLevel {
	case model.RoleOperational, model.RoleTeacher:
		return 3, 5
	case model.RoleCoordinator, model.RoleManagerial:
		return 5, 7
	case model.RoleExecutive:
		return 6, 8
	default:
		return 3, 5
	}
}
