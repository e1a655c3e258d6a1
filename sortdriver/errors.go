package sortdriver

// This package has no sentinel errors of its own: Sort propagates whatever
// error its scheduler, target builder, or distance function produces.
