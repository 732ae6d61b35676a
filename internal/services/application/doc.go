// Package application handles volunteer applications.
//
// A client submits an application; an admin approves or rejects it, and
// approval makes the applicant a volunteer on the backend.
package application
