// Package core implements the earthinspires session state.
//
// [App] is the single owner of mutable state. It is built once per process
// by [NewApp], which reads the persisted snapshot list and theme, and then
// only changes through three transitions:
//
//   - [App.Capture] prepends a mock snapshot, sets the flash flag for
//     params.FlashDuration and fires the shutter [Cue] without waiting on it
//   - [App.Delete] removes a snapshot by id
//   - [App.ToggleTheme] flips between dark and light
//
// Each transition serializes the affected value and overwrites its key in
// the [database.Store] before returning, so a caller that handles one user
// action at a time never observes unsaved state.
//
// Reads are fail-soft: a corrupt snapshot list loads as empty and an
// unknown theme loads as dark. Writes are not: a failed write comes back as
// a [*PersistError] after the in-memory change has been applied.
//
// Capture inputs come from a [Generator] so tests can fix the seed and the
// clock:
//
//	app := core.NewApp(db, core.WithGenerator(core.GeneratorFunc(func() core.CaptureInput {
//	    return core.CaptureInput{Seed: 42, At: fixed}
//	})))
package core
