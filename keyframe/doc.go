// Package keyframe serializes rigkey results into the keyframe text blocks
// consumed by the animation pipeline.
//
// The output is an indentation-sensitive YAML fragment, one block per frame
// index, written in frame order:
//
//	  0:
//	    head:
//	      position:
//	        x: 0.00
//	        y: 19.00
//	        z: -1
//
// Every coordinate and angle is written with two decimals.
package keyframe
