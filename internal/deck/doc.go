// Package deck defines the deck layout documents written by the builder.
//
// A Configuration is one named layout: a grid size, a rotation, a background
// color and an ordered list of buttons. Each ButtonSpec binds a macro name to
// its label, colors, scale and image geometry:
//
//	{
//	  "name": "Streaming",
//	  "size": "2x3",
//	  "rotation": "horizontal",
//	  "bg": "#ffffff",
//	  "buttons": [
//	    {
//	      "macro": "mute",
//	      "text": "Mute",
//	      "bg": "#007bff",
//	      "fg": "#ffffff",
//	      "scale": 1.0,
//	      "img-height": "",
//	      "img-width": "",
//	      "img-radius": "",
//	      "radius": "10px",
//	      "active": "#0047a6"
//	    }
//	  ]
//	}
//
// Validation failures are reported as *ValidationError and missing targets as
// *NotFoundError; both match the ErrValidation and ErrNotFound sentinels with
// errors.Is.
package deck
