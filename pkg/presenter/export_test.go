package presenter

var Highlight = highlight
