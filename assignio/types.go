package assignio

// VoidSentinel is the raw uint32 value written for a void cell in an
// assignment file.
const VoidSentinel uint32 = 0xFFFFFFFF
