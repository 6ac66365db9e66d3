// ec2gen renders the EC2 model packages from the API definition.
package main

func main() {
	Execute()
}
