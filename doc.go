/*
go-mtm implements multi-template matching for object detection in images.

One or more small reference images (templates) are searched for inside a
larger image using normalized cross-correlation.  Candidate locations from
all templates are pooled together and reconciled with Non-Maximum
Suppression (NMS) so that overlapping detections of the same physical
object, possibly produced by different template variants, are reduced to a
single result.

MatchTemplates is the main entry point.  FindMatches returns the raw
candidate pool without suppression for callers that want to run their own
reconciliation.

See example code and usage in the examples subdirectory.
*/
package mtm
