// Package users, payloads for the user and admin endpoints. Every projection
// here omits the password hash; it is the service's job to make sure no
// response shape can carry it.
package users

import "time"

// PublicUser is the public projection of a user record.
type PublicUser struct {
	RegNo     string    `json:"regNo" example:"S2024001"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListResponse is the admin user listing.
type UserListResponse struct {
	TotalUsers int          `json:"totalUsers" example:"42"`
	Users      []PublicUser `json:"users"`
}

// DeletedUserResponse is the summary returned after an admin deletion.
type DeletedUserResponse struct {
	Message     string     `json:"message" example:"User deleted successfully"`
	DeletedUser PublicUser `json:"deletedUser"`
}

// AnalyticsResponse carries aggregate counts for the admin dashboard.
type AnalyticsResponse struct {
	TotalUsers  int64 `json:"totalUsers" example:"40"`
	TotalAdmins int64 `json:"totalAdmins" example:"2"`
	TotalChats  int64 `json:"totalChats" example:"150"`
}

// ProfileResponse is the caller's own projection with relation counts.
type ProfileResponse struct {
	RegNo         string    `json:"regNo" example:"S2024001"`
	Role          string    `json:"role" example:"user"`
	CreatedAt     time.Time `json:"createdAt"`
	ChatCount     int64     `json:"chatCount" example:"12"`
	UploadedFiles int64     `json:"uploadedFiles" example:"3"`
}
