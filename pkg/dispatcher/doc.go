// Package dispatcher composes several bindings against one template.
//
// Four compositions exist. Cross multiplies the bindings' value lists, with
// the first binding varying fastest. Combined zips the lists by index and
// stops at the shortest. Removal and CombinedRemoval first subtract, per
// key, the values generated by an aligned list of removal bindings and then
// cross or zip the survivors.
//
// The loop order of Cross is part of the output contract: generated code is
// emitted in exactly that order.
package dispatcher
