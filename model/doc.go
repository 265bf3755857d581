// Package model defines the data types shared by the lockor engine and its
// collaborators: form submissions, outcome codes, accepted allocation rows
// and the weekly term arithmetic. The types are plain data holders – all
// decision logic lives in the resolver package.
package model
