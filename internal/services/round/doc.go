// Package round schedules volunteer rounds and runs their signups.
//
// The lottery itself runs on the backend; Draw only asks for it.
package round
