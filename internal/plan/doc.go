// Package plan defines the study plan data model shared by the API client,
// the controller and the views.
//
// A [StudyPlan] carries no absolute dates. Day i of a plan is projected onto
// the calendar as today + i at render time, so the same plan rendered on a
// later day shifts forward. See [DateFor].
//
// The package also holds the pure presentation helpers that both the
// calendar and the day list depend on: [FormatHoursMinutes] and [TopicTags].
package plan
