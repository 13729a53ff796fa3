// Package wizard implements the résumé intake wizard state machine.
//
// A Controller owns everything the user enters (profile data, target role and
// template choice) together with the wizard position. The position is a step
// (profile questions, role targeting, template selection) and, during the
// first step, the index of the current profile question.
//
// The Controller is driven synchronously by a presentation layer such as the
// TUI in internal/ui/tui or the answers replay in internal/answers. Finalize
// assembles an immutable Snapshot and hands it to the registered Observers.
package wizard
