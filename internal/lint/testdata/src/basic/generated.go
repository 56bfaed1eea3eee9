// Code generated by hand. DO NOT EDIT.

package basic

func generatedQuxx() {}
