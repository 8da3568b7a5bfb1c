package invite

import (
	"time"

	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
)

// Status is the lifecycle state of an invite. Pending invites form the
// working set; accept and decline are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Invite asks a user, by email, to join a project as collaborator. The
// record carries the project and inviter for display but not the full
// payload the dashboard needs, which is why resolving an invite triggers a
// refetch upstream instead of splicing the project in locally.
type Invite struct {
	ID           string          `json:"id"`
	ProjectID    string          `json:"project_id"`
	InvitedEmail string          `json:"invited_email"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Project      project.Project `json:"project"`
	InvitedBy    user.User       `json:"invited_by"`
}
