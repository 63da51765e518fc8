// Package levelio converts boards to and from their interchange formats:
// the JSON level format used by level packs and the HTTP API, and the
// compact text notation used by fixtures and debug output.
//
// JSON shape
//
//	{
//	  "goalColor": "G",
//	  "rows": 2,
//	  "cols": 2,
//	  "tiles": [
//	    [ { "color": "G", "dots": 1 }, { "color": "B", "dots": 0 } ],
//	    [ { "type": "empty" }, { "type": "wall" } ]
//	  ]
//	}
//
// Colored cells carry "color" and "dots" (dots may be omitted, meaning 0);
// empty and wall cells carry only "type"; a null cell reads as empty. Level
// packs are a JSON array of these objects.
//
// Text notation
//
//	G(2) B _
//	_    | R
//
// One board row per line, cells separated by spaces: "_" empty, "|" wall,
// a palette letter for a colored cell with an optional "(n)" dot count.
// core.Board.String renders this notation; ParseText reads it back.
//
// Errors
//
//   - ErrBadTile for an unrecognized tile object.
//   - ErrShape when the tiles grid contradicts the declared rows/cols.
//   - ErrBadText for malformed text notation.
//   - core constructor errors (core.ErrUnknownColor, core.ErrDimensions,
//     core.ErrNonRectangular, core.ErrNegativeDots) pass through unchanged.
package levelio
