package cmd

const rootLongDescription = `Scalist makes scaling animation curves vastly more powerful and simple.

Given a scene file with selected keyframes, it computes a pivot from the
selection (midpoint, highest or lowest value, first or last frame, the
playback cursor, the last selected key, or zero) and scales every selected
key around it, in value or in time.

Amount is in 100%, so 0.9 will reduce by 10%, 1.1 will increase by 10%, etc.
Time scaling places all keys on whole frames, no subframes.`

const scaleLongDescription = `Run one scaling operation per scene file and write the file back.

The pivot strategy determines the axis: value pivots (middle-value,
highest-value, lowest-value, zero-value, first-value, last-selected-value,
flip-curve-value, flip-zero-value) scale key values; time pivots (first-time,
last-time, current-time, last-selected-time) scale key frames and snap the
results to whole frames.

By default one pivot is computed from the whole selection. With --multi each
curve is scaled from its own pivot: use it when several curves are selected
and each should scale relative to its own midpoint, highest key, or lowest
key.

Flip pivots invert the selected curves (the amount is forced to -1):
flip-curve-value flips each curve over its center value, flip-zero-value
over 0.`

const listLongDescription = `List the curves of each scene file with key counts, selected key counts and
frame ranges.`

const uiLongDescription = `Open the interactive panel for one scene file: pick a pivot strategy, set
the amount (cycle the preset amounts with [ and ]), toggle unified/per-curve
grouping with m, and apply with enter. Every apply writes the scene file.`
