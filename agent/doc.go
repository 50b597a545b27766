// Package agent implements the concrete pipeline agents. The set of agents
// is closed: Kind enumerates every known agent together with its fixed
// system instruction and empty-input guidance, and Registry resolves
// normalized identifiers to configured Agent instances.
package agent
